package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"

	"github.com/Chikimuras/ezlife/pkg/translator"
)

func writeTranslations(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.toml"), []byte(`taskNotFound = "Task not found."`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.toml"), []byte(`taskNotFound = "Tâche introuvable."`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644))
	return dir
}

func TestInitTranslator_LoadsMessages(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  writeTranslations(t),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	for lang, expected := range map[string]string{
		translator.LanguageEn: "Task not found.",
		translator.LanguageFr: "Tâche introuvable.",
	} {
		msg, err := i18n.NewLocalizer(translator.Translator, lang).Localize(&i18n.LocalizeConfig{MessageID: "taskNotFound"})
		require.NoError(t, err)
		require.Equal(t, expected, msg)
	}
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	require.NotNil(t, translator.Translator)
}

func TestMatchLanguage(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  writeTranslations(t),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	require.Equal(t, translator.LanguageFr, translator.MatchLanguage("fr-FR,fr;q=0.9,en;q=0.8"))
	require.Equal(t, translator.LanguageEn, translator.MatchLanguage("en-US"))
	require.Equal(t, translator.LanguageEn, translator.MatchLanguage("de-DE"))
	require.Equal(t, translator.LanguageEn, translator.MatchLanguage(""))
}
