package locale

// Message keys shared by the catalogs.
const (
	KeyAppName                = "app.name"
	KeyAppDescription         = "app.description"
	KeyTranslateEmpty         = "translate.empty"
	KeyErrInvalidDigit        = "error.invalid_digit"
	KeyErrInvalidGroupLength  = "error.invalid_group_length"
	KeyErrCodePointOutOfRange = "error.code_point_out_of_range"
	KeyErrTranslate           = "error.translate"
	KeyHistoryEmpty           = "history.empty"
	KeyHistoryDisabled        = "history.disabled"
	KeyHistoryRemoved         = "history.removed"
	KeyHistoryNotFound        = "history.not_found"
	KeyHistorySaveFailed      = "history.save_failed"
	KeyVersionLine            = "version.line"
	KeyVersionLicense         = "version.license"
	KeyVersionWebsite         = "version.website"
)
