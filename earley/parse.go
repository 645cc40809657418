package earley

import "github.com/nihei9/cfgearley/cfg"

// Parse composes the pipeline: tokenize, recognize, transform, extract. It
// passes g to both the tokenizer and the recognizer. Errors from the
// recognizer and the extractor propagate to the caller as *cfgerr.Error; an
// error from the tokenizer is returned unchanged.
func Parse(sentence string, g *cfg.Grammar, opts ...Option) (*Tree, error) {
	cfgOpt := buildConfig(opts)

	tokens, err := cfgOpt.tokenizer(sentence, g)
	if err != nil {
		return nil, err
	}

	chart, err := Recognize(tokens, g, opts...)
	if err != nil {
		return nil, err
	}

	transformed := Transform(chart)

	return Extract(transformed, g, tokens, opts...)
}
