package apierrors_test

import (
	"os"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/Chikimuras/ezlife/pkg/apierrors"
	"github.com/Chikimuras/ezlife/pkg/translator"
)

func TestMain(m *testing.M) {
	translator.Translator = i18n.NewBundle(language.English)
	translator.Translator.MustAddMessages(language.English, &i18n.Message{ID: "test_key", Other: "Test message"})
	translator.Translator.MustAddMessages(language.French, &i18n.Message{ID: "test_key", Other: "Message de test"})
	os.Exit(m.Run())
}

func TestCreateError_ReturnsJsonErr(t *testing.T) {
	err := apierrors.CreateError(400, apierrors.ReasonBadRequest, "test_key", "en")
	assert.Equal(t, 400, err.ErrDetails.Code)
	assert.Equal(t, "CLIENT_001", err.ErrDetails.Reason)
	assert.Equal(t, "Test message", err.ErrDetails.Message)
}

func TestGetTransErrorMsg_ReturnsTranslation(t *testing.T) {
	assert.Equal(t, "Test message", apierrors.GetTransErrorMsg("test_key", "en"))
	assert.Equal(t, "Message de test", apierrors.GetTransErrorMsg("test_key", "fr-FR,fr;q=0.9"))
}

func TestGetTransErrorMsg_FallbackToKey(t *testing.T) {
	assert.Equal(t, "unknown_key", apierrors.GetTransErrorMsg("unknown_key", "en"))
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	err := apierrors.CreateError(500, apierrors.ReasonInternal, "test_key", "en")
	assert.Equal(t, "Code: 500, Reason: SERVER_001, Message: Test message", err.Error())
}
