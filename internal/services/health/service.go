package health

// Service encapsulates health-related checks.
type Service struct {
	modelVersion string
}

// NewService constructs a health service reporting the loaded model version.
func NewService(modelVersion string) *Service {
	return &Service{modelVersion: modelVersion}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":    true,
		"model": s.modelVersion,
	}
}
