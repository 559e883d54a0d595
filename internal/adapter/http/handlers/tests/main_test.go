package tests

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/pkg/translator"
)

// translationDir locates the shipped bundles relative to this file, so the suite does not
// depend on the working directory.
func translationDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "..", "pkg", "translator", "translation")
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	zap.ReplaceGlobals(zap.NewNop())

	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationDir(),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
	os.Exit(m.Run())
}
