package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shima-cpu/Ru-passport-validity-calculator/internal/config"
)

// localeKeys lists every translation key defined in config.go.
var localeKeys = []string{
	config.TKeyWinTitle,
	config.TKeyWinContacts,
	config.TKeyWinSettings,
	config.TKeyLblBirth,
	config.TKeyLblIssue,
	config.TKeyHelpBirth,
	config.TKeyHelpIssue,
	config.TKeyBtnCompute,
	config.TKeyBtnContacts,
	config.TKeyBtnExport,
	config.TKeyBtnSettings,
	config.TKeyBtnSave,
	config.TKeyBtnCancel,
	config.TKeyLblLanguage,
	config.TKeyHelpLanguage,
	config.TKeyLblLegal,
	config.TKeyLegalText,
	config.TKeyLblFooter,
	config.TKeyLblResult,
	config.TKeyLblStage,
	config.TKeyLblNextChange,
	config.TKeyLblDeadline,
	config.TKeyLblDaysLeft,
	config.TKeyValNone,
	config.TKeyStage14,
	config.TKeyStage20,
	config.TKeyStage45,
	config.TKeyStageUnknown,
	config.TKeyStatusOK,
	config.TKeyStatusDue,
	config.TKeyStatusInvalid,
	config.TKeyStatusNoMore,
	config.TKeyErrBirthFuture,
	config.TKeyErrIssueFuture,
	config.TKeyErrIssueBeforeDOB,
	config.TKeyErrUnder14,
	config.TKeyErrIssueTooEarly,
	config.TKeyErrBirthRange,
	config.TKeyErrIssueRange,
	config.TKeyErrDateFormat,
	config.TKeyEvtRenewal,
	config.TKeyEvtDeadline,
	config.TKeyNotifExportOK,
	config.TKeyNotifExportErr,
	config.TKeyNotifContactErr,
	config.TKeyMsgNoContacts,
	config.TKeyErrNoExport,
	config.TKeyColName,
	config.TKeyColBirth,
	config.TKeyFormatDate,
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in each locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			filename := "active." + lang + ".json"

			// Adjust path if running test from internal/ui or root
			path := filepath.Join("locales", filename)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				path = filepath.Join("..", "..", "internal", "ui", "locales", filename)
				content, err = os.ReadFile(path)
			}
			require.NoErrorf(t, err, "Must load %s", filename)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			defined := make(map[string]bool, len(localeKeys))
			for _, k := range localeKeys {
				defined[k] = true

				_, exists := jsonMap[k]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", k, filename)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !defined[jsonKey] {
					t.Logf("Warning: Key '%s' exists in %s but is not defined in config.go (might be unused)", jsonKey, filename)
				}
			}
		})
	}
}
