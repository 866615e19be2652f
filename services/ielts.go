package services

import (
	"context"

	"ieltshub/models"
	"ieltshub/pb"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Evaluator produces an evaluation text for one submission. Satisfied by
// *Claude; tests substitute a fake.
type Evaluator interface {
	Evaluate(ctx context.Context, req models.EvaluationRequest) (string, error)
}

type IELTSService struct {
	pb.UnimplementedIELTSServiceServer

	evaluator Evaluator
}

func NewIELTSService(evaluator Evaluator) *IELTSService {
	return &IELTSService{evaluator: evaluator}
}

// EvaluateIELTS forwards the submission to the evaluator and answers with
// every input field echoed back verbatim plus the evaluation text. Input is
// deliberately not validated; empty fields pass through as-is.
func (s *IELTSService) EvaluateIELTS(ctx context.Context, req *pb.EvaluationRequest) (*pb.EvaluationResponse, error) {
	evalReq := models.EvaluationRequest{
		Passage:            req.GetPassage(),
		Question:           req.GetQuestion(),
		StudentResponse:    req.GetStudentResponse(),
		ComplexSentences:   req.GetComplexSentences(),
		AdvancedVocabulary: req.GetAdvancedVocabulary(),
		CohesiveDevices:    req.GetCohesiveDevices(),
	}

	evaluation, err := s.evaluator.Evaluate(ctx, evalReq)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to evaluate submission: %v", err)
	}

	return &pb.EvaluationResponse{
		Passage:            evalReq.Passage,
		Question:           evalReq.Question,
		StudentResponse:    evalReq.StudentResponse,
		ComplexSentences:   evalReq.ComplexSentences,
		AdvancedVocabulary: evalReq.AdvancedVocabulary,
		CohesiveDevices:    evalReq.CohesiveDevices,
		Evaluation:         evaluation,
	}, nil
}
