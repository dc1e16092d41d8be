/*
Package agent wraps the model call in a single-analyst pipeline: a fixed
persona, one task, exactly one LLM invocation per run.
*/
package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"fraudscope/internal/utils"
	"fraudscope/models"
	"fraudscope/prompts"
)

// assessmentChain is a compiled Eino pipeline: Request -> Prompt -> Model -> Parser -> RiskAssessment
type assessmentChain struct {
	chain compose.Runnable[models.AnalysisRequest, models.RiskAssessment]
}

// newAssessmentChain builds and compiles the single-shot analysis graph.
func newAssessmentChain(ctx context.Context, chatModel model.BaseChatModel) (*assessmentChain, error) {

	// 1. Prompt Node: persona system message + task instruction
	promptFunc := func(ctx context.Context, req models.AnalysisRequest) ([]*schema.Message, error) {
		system, err := prompts.RenderAnalystSystem(req)
		if err != nil {
			return nil, err
		}
		task, err := prompts.RenderAssessmentTask(req)
		if err != nil {
			return nil, err
		}
		return []*schema.Message{
			schema.SystemMessage(system),
			schema.UserMessage(task),
		}, nil
	}

	// 2. Model Node (Lambda Adapter)
	// Wrapping BaseChatModel in a lambda keeps the graph open to models
	// that don't support tool binding.
	modelFunc := func(ctx context.Context, input []*schema.Message) (*schema.Message, error) {
		return chatModel.Generate(ctx, input)
	}

	// 3. Parser Node: extract JSON, then gate it on the schema
	parserFunc := func(ctx context.Context, output *schema.Message) (models.RiskAssessment, error) {
		assessment, err := utils.ExtractAndParseJSON[models.RiskAssessment](output.Content)
		if err != nil {
			return models.RiskAssessment{}, fmt.Errorf("parse reply: %w", err)
		}
		if err := models.ValidateStruct(assessment); err != nil {
			return models.RiskAssessment{}, fmt.Errorf("reply failed schema check: %w", err)
		}
		return assessment, nil
	}

	// 4. Chain Construction using Graph
	graph := compose.NewGraph[models.AnalysisRequest, models.RiskAssessment]()

	_ = graph.AddLambdaNode("prompt", compose.InvokableLambda(promptFunc))
	_ = graph.AddLambdaNode("model", compose.InvokableLambda(modelFunc))
	_ = graph.AddLambdaNode("parser", compose.InvokableLambda(parserFunc))

	_ = graph.AddEdge(compose.START, "prompt")
	_ = graph.AddEdge("prompt", "model")
	_ = graph.AddEdge("model", "parser")
	_ = graph.AddEdge("parser", compose.END)

	compiledChain, err := graph.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile chain: %w", err)
	}

	return &assessmentChain{chain: compiledChain}, nil
}

// invoke executes the chain. One call in, one structured result or error out.
func (c *assessmentChain) invoke(ctx context.Context, req models.AnalysisRequest) (models.RiskAssessment, error) {
	return c.chain.Invoke(ctx, req)
}
