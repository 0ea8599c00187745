package excel

// ReaderConfig holds configuration for the spreadsheet reading source
type ReaderConfig struct {
	FilePath string `json:"file_path"`
	Sheet    string `json:"sheet"`
}

// DefaultReaderConfig returns sensible defaults for spreadsheet input
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		Sheet: "Readings",
	}
}
