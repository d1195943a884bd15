package tui

// Option configures the walker.
type Option func(*Walker)

// WithPromptDriver overrides the prompt driver used by the walker.
func WithPromptDriver(driver PromptDriver) Option {
	return func(w *Walker) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithWorkDir sets the directory file paths are made relative to. When
// empty, paths are stored as entered.
func WithWorkDir(dir string) Option {
	return func(w *Walker) {
		w.workDir = dir
	}
}

// WithPageSize bounds the number of options shown at once by selection
// prompts.
func WithPageSize(size int) Option {
	return func(w *Walker) {
		if size > 0 {
			w.pageSize = size
		}
	}
}
