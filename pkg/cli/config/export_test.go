package config

// NewGeminiForTest creates a Gemini config for testing purposes
func NewGeminiForTest(projectID, location string) *Gemini {
	return &Gemini{
		projectID: projectID,
		location:  location,
	}
}

// NewAWSForTest creates deployment settings flags for testing purposes
func NewAWSForTest(region, table, bucket, modelID, modelRegion, useMocks string) *AWS {
	return &AWS{
		region:      region,
		table:       table,
		bucket:      bucket,
		modelID:     modelID,
		modelRegion: modelRegion,
		useMocks:    useMocks,
	}
}

// NewRepositoryForTest creates repository flags for testing purposes
func NewRepositoryForTest(backend, projectID, mockClaimsFile, mockNotesFile string) *Repository {
	return &Repository{
		backend:        backend,
		projectID:      projectID,
		mockClaimsFile: mockClaimsFile,
		mockNotesFile:  mockNotesFile,
	}
}

// NewLoggerForTest creates logger flags for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
