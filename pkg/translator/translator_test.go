package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"todoboard/pkg/translator"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitTranslator_LoadsMessages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.toml", `hello = "Hello english"`)
	writeFile(t, dir, "fr.toml", `hello = "Bonjour"`)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	require.Equal(t, "Hello english", translator.Message("hello", translator.LanguageEn))
	require.Equal(t, "Bonjour", translator.Message("hello", translator.LanguageFr))
}

func TestInitTranslator_SkipsUnsupportedLanguages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.toml", `hello = "Hello english"`)
	writeFile(t, dir, "de.toml", `hello = "Hallo"`)
	writeFile(t, dir, "README.md", `not a bundle`)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn},
	})

	require.Equal(t, "Hello english", translator.Message("hello", "de"))
}

func TestInitTranslator_ShippedBundles(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	require.Equal(t, "Todo not found", translator.Message("todoNotFound", translator.LanguageEn))
	require.Equal(t, "Tâche introuvable", translator.Message("todoNotFound", translator.LanguageFr))
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})

	require.Equal(t, "hello", translator.Message("hello", translator.LanguageEn))
}
