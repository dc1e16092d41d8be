package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"

	"fraudscope/internal/llm"
	"fraudscope/models"
)

// Analyst is the fraud risk analyst agent. It holds no state between runs;
// every Assess call owns its own request and result.
type Analyst struct {
	chain *assessmentChain
}

// NewAnalyst creates the analyst backed by the configured provider.
func NewAnalyst(ctx context.Context, cfg llm.Config) (*Analyst, error) {
	chatModel, err := llm.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create model: %w", err)
	}
	return NewAnalystWithModel(ctx, chatModel)
}

// NewAnalystWithModel creates the analyst over an existing chat model.
func NewAnalystWithModel(ctx context.Context, chatModel model.BaseChatModel) (*Analyst, error) {
	chain, err := newAssessmentChain(ctx, chatModel)
	if err != nil {
		return nil, err
	}
	return &Analyst{chain: chain}, nil
}

// Assess issues exactly one model call and blocks until the reply or failure
// arrives. There is no retry and no partial result: any transport, parse, or
// schema failure rejects the whole run.
func (a *Analyst) Assess(ctx context.Context, req models.AnalysisRequest) (models.RiskAssessment, error) {
	assessment, err := a.chain.invoke(ctx, req)
	if err != nil {
		return models.RiskAssessment{}, fmt.Errorf("analysis failed: %w", err)
	}
	return assessment, nil
}
