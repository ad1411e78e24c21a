package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "RU Passport Calculator"
	AppID       = "com.github.shima-cpu.ru-passport-validity-calculator"
	LogFileName = "app.log"
	IconFile    = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Renewal Rules (Federal thresholds for the internal passport)
// -----------------------------------------------------------------------------

const (
	// Age thresholds at which the document is issued or must be exchanged.
	AgeFirstIssue   = 14
	AgeFirstRenewal = 20
	AgeFinalRenewal = 45

	// GraceDays is the statutory window after the threshold birthday during
	// which the old document remains acceptable for the exchange procedure.
	GraceDays = 90
)

// MinCalendarDate bounds both input fields. Dates before 1900 are rejected
// as data-entry mistakes.
var MinCalendarDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth     = 560
	SettingsWindowWidth = 400

	// Preference Keys
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"ru", "en"}

// -----------------------------------------------------------------------------
// Contact Picker Window Constants
// -----------------------------------------------------------------------------

const (
	ContactsWinWidth  = 420
	ContactsWinHeight = 360

	// Table Column IDs
	ColIDName  = 0
	ColIDBirth = 1

	// Table Layout
	ColWidthName  = 260
	ColWidthBirth = 130

	TablePlaceholder = "Cell Content"
	LogMsgOpenWin    = "Opening contact picker"
	LogMsgPicked     = "Contact selected"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle     = "win_title"
	TKeyWinContacts  = "win_contacts_title"
	TKeyWinSettings  = "win_settings_title"
	TKeyLblBirth     = "lbl_birth_date"
	TKeyLblIssue     = "lbl_issue_date"
	TKeyHelpBirth    = "help_birth_date"
	TKeyHelpIssue    = "help_issue_date"
	TKeyBtnCompute   = "btn_compute"
	TKeyBtnContacts  = "btn_from_contacts"
	TKeyBtnExport    = "btn_export_ics"
	TKeyBtnSettings  = "btn_settings"
	TKeyBtnSave      = "btn_save"
	TKeyBtnCancel    = "btn_cancel"
	TKeyLblLanguage  = "lbl_language"
	TKeyHelpLanguage = "help_language"
	TKeyLblLegal     = "lbl_legal_title"
	TKeyLegalText    = "legal_text"
	TKeyLblFooter    = "lbl_footer"

	// Result card
	TKeyLblResult     = "lbl_result"
	TKeyLblStage      = "lbl_stage"
	TKeyLblNextChange = "lbl_next_change"
	TKeyLblDeadline   = "lbl_deadline"
	TKeyLblDaysLeft   = "lbl_days_left"
	TKeyValNone       = "val_none"

	// Stage labels
	TKeyStage14      = "stage_14"
	TKeyStage20      = "stage_20"
	TKeyStage45      = "stage_45"
	TKeyStageUnknown = "stage_unknown"

	// Status messages per kind
	TKeyStatusOK      = "status_ok"  // Requires Days
	TKeyStatusDue     = "status_due" // Requires Days
	TKeyStatusInvalid = "status_invalid"
	TKeyStatusNoMore  = "status_no_more"

	// Validation errors
	TKeyErrBirthFuture    = "err_birth_future"
	TKeyErrIssueFuture    = "err_issue_future"
	TKeyErrIssueBeforeDOB = "err_issue_before_birth"
	TKeyErrUnder14        = "err_under_14"
	TKeyErrIssueTooEarly  = "err_issue_before_14"
	TKeyErrBirthRange     = "err_birth_range" // Requires Min, Max
	TKeyErrIssueRange     = "err_issue_range" // Requires Min, Max
	TKeyErrDateFormat     = "err_date_format"

	// Export & Contacts
	TKeyEvtRenewal      = "event_renewal"
	TKeyEvtDeadline     = "event_deadline"
	TKeyNotifExportOK   = "notif_export_ok"
	TKeyNotifExportErr  = "notif_export_err"
	TKeyNotifContactErr = "notif_contact_err"
	TKeyMsgNoContacts   = "msg_no_contacts"
	TKeyErrNoExport     = "err_nothing_to_export"

	// Column Headers & Formats
	TKeyColName    = "col_name"
	TKeyColBirth   = "col_birth"
	TKeyFormatDate = "format_date_short" // Date format pattern (e.g., "02.01.2006")
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "ru"
	UIDSalt         = "passport-calc-v1-" // Salt for deterministic UID generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%s@%s"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//RU Passport Calculator//Export//RU"
	ICalCalName   = "Замена паспорта"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "passportcalc"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	// DefaultAlarmTrigger reminds one week before the renewal window opens.
	DefaultAlarmTrigger = "-P7D"

	// Event identifiers used in deterministic UIDs.
	EventKindRenewal  = "renewal"
	EventKindDeadline = "deadline"
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatRU is the display and entry format used across the UI.
	DateFormatRU = "02.01.2006"

	// Date layouts used for parsing vCard BDAY fields. Truncated --MM-DD
	// values are rejected: the renewal rules need the birth year.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtICS   = ".ics"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrVCardParse      = "failed to parse vCard stream"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrDateParse       = "unable to parse date"
	ErrNothingToExport = "result has no upcoming renewal to export"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrLocNotInit      = "localizer not initialized"
	ErrWriteFile       = "failed to write export file"
)

// -----------------------------------------------------------------------------
// Fallbacks (Russian rule text; overridden by i18n where loaded)
// -----------------------------------------------------------------------------

const (
	FallbackStage14      = "Первичное получение в 14 лет"
	FallbackStage20      = "Обмен в 20 лет"
	FallbackStage45      = "Обмен в 45 лет"
	FallbackStageUnknown = "Не удалось однозначно определить (проверьте ввод)"

	FallbackErrBirthFuture    = "Дата рождения не может быть в будущем."
	FallbackErrIssueFuture    = "Дата выдачи паспорта не может быть в будущем."
	FallbackErrIssueBeforeDOB = "Дата выдачи паспорта не может быть раньше даты рождения."
	FallbackErrUnder14        = "Лицу младше 14 лет паспорт ещё не выдается."
	FallbackErrIssueTooEarly  = "Паспорт не может быть выдан ранее достижения 14 лет. Проверьте дату выдачи."
	FallbackErrBirthRange     = "Дата рождения должна быть в диапазоне %s–%s."
	FallbackErrIssueRange     = "Дата выдачи должна быть в диапазоне %s–%s."

	FallbackEvtRenewal  = "Замена паспорта РФ"
	FallbackEvtDeadline = "Крайний срок замены паспорта РФ"
	FallbackName        = "Без имени"

	TitleStartupError = "Startup Error"

	MsgLogWarning = "Warning: %s at %s: %v\n"

	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgAppStarting    = "Starting application"
	MsgComputeReq     = "Evaluation requested"
	MsgComputeDone    = "Evaluation finished"
	MsgValidationFail = "Input rejected by validator"
	MsgExportDone     = "Renewal schedule exported"
	MsgContactsLoaded = "Contacts loaded"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping contact without usable birth date"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyStage     = "stage"
	LogKeyStatus    = "status"
	LogKeyBirth     = "birth_date"
	LogKeyIssue     = "issue_date"
	LogKeyNext      = "next_change"
	LogKeyDaysLeft  = "days_left"
	LogKeyIssues    = "issues"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyDuration  = "duration_ms"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompUISet    = "ui_settings"
	CompRules    = "rules"
	CompExport   = "export"
	CompContacts = "contacts"
	CompMain     = "main"
	CompI18n     = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
