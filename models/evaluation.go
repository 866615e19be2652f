package models

// EvaluationRequest carries one student submission through the service.
// Built per call and never shared between calls.
type EvaluationRequest struct {
	Passage            string
	Question           string
	StudentResponse    string
	ComplexSentences   string
	AdvancedVocabulary string
	CohesiveDevices    string
}
