package backend

import (
	"context"
	"os"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/lft-ai/lftgen/shared/lfterr"
)

// remote completes prompts against the hosted inference endpoint with a
// single synchronous POST per call. No retries: a failed call is surfaced
// immediately.
type remote struct {
	model  string
	params inferenceParameters
	client *resty.Client
	log    zerolog.Logger
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

func newRemote(cfg Config, logger zerolog.Logger) (*remote, error) {
	token := cfg.Token
	if token == "" {
		token = os.Getenv("HF_TOKEN")
	}
	if token == "" {
		return nil, lfterr.New(lfterr.KindConfiguration,
			"api token required for the remote backend: set HF_TOKEN or pass one explicitly")
	}

	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetAuthToken(token).
		SetTimeout(cfg.Timeout).
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	return &remote{
		model: cfg.Model,
		params: inferenceParameters{
			MaxNewTokens:   cfg.MaxNewTokens,
			Temperature:    cfg.Temperature,
			TopP:           cfg.TopP,
			DoSample:       !cfg.Greedy,
			ReturnFullText: false,
		},
		client: client,
		log:    logger,
	}, nil
}

func (r *remote) Complete(ctx context.Context, p string) (string, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(inferenceRequest{Inputs: p, Parameters: r.params}).
		Post("/models/" + r.model)
	if err != nil {
		r.log.Error().Err(err).Str("model", r.model).Msg("inference request failed")
		return "", &lfterr.Error{
			Kind: lfterr.KindInference, Transport: true,
			Msg: "inference request failed", Err: err,
		}
	}
	if resp.IsError() {
		r.log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Msg("inference non-2xx")
		return "", &lfterr.Error{
			Kind: lfterr.KindInference, Status: resp.StatusCode(),
			Msg: "inference call failed with status " + resp.Status() + ": " + resp.String(),
		}
	}
	return decodeGeneratedText(resp.Body())
}

// decodeGeneratedText accepts both response shapes the endpoint produces:
// an array whose first element carries generated_text, or a single object.
func decodeGeneratedText(body []byte) (string, error) {
	type generation struct {
		GeneratedText string `json:"generated_text"`
	}
	var list []generation
	if err := sonic.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return "", lfterr.New(lfterr.KindInference, "inference response held no generations")
		}
		return list[0].GeneratedText, nil
	}
	var single generation
	if err := sonic.Unmarshal(body, &single); err != nil {
		return "", lfterr.Wrap(lfterr.KindInference, err, "decode inference response")
	}
	return single.GeneratedText, nil
}
