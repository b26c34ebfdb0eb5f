package contact

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrPromptAborted is returned when the user interrupts a prompt (Ctrl-C).
var ErrPromptAborted = errors.New("contact: prompt aborted")

// InputConfig configures a single-line prompt.
type InputConfig struct {
	Message  string
	Default  string
	Help     string
	Required bool
}

// TextAreaConfig configures a multi-line prompt.
type TextAreaConfig struct {
	Message  string
	Default  string
	Help     string
	Required bool
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
}

// Prompter abstracts the terminal so the form flow can be tested without one.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	TextArea(ctx context.Context, cfg TextAreaConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
}

// SurveyPrompter prompts on the process terminal.
type SurveyPrompter struct {
	Stdio *terminal.Stdio // nil uses os.Stdin/os.Stdout/os.Stderr
}

func (p *SurveyPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out, p.opts(cfg.Required)...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (p *SurveyPrompter) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &out, p.opts(cfg.Required)...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (p *SurveyPrompter) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
	}
	if err := survey.AskOne(prompt, &out, p.opts(false)...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func (p *SurveyPrompter) opts(required bool) []survey.AskOpt {
	var opts []survey.AskOpt
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	if p.Stdio != nil {
		opts = append(opts, survey.WithStdio(p.Stdio.In, p.Stdio.Out, p.Stdio.Err))
	}
	return opts
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrPromptAborted
	}
	return err
}

// fieldPrompts mirrors the page form: labels and the browser's required
// hint. The hint only blocks an empty answer; it checks no formats.
var fieldPrompts = map[Field]InputConfig{
	FieldName:  {Message: "Your Name", Required: true},
	FieldEmail: {Message: "Your Email", Required: true},
	FieldPhone: {Message: "Your Phone", Required: true},
}

// Fill prompts for every field, starting from the values in d, and returns
// the edited draft. Each answer is applied with UpdateField.
func Fill(ctx context.Context, p Prompter, d Draft) (Draft, error) {
	for _, f := range Fields() {
		var (
			value string
			err   error
		)
		if f == FieldMessage {
			value, err = p.TextArea(ctx, TextAreaConfig{
				Message:  "Your Message",
				Default:  d.Message,
				Required: true,
			})
		} else {
			cfg := fieldPrompts[f]
			cfg.Default = d.Get(f)
			value, err = p.Input(ctx, cfg)
		}
		if err != nil {
			return d, fmt.Errorf("prompt %s: %w", f, err)
		}
		d = UpdateField(d, f, value)
	}
	return d, nil
}

// RunForm fills the form, submits it, and on failure offers to resubmit the
// preserved draft. It returns the final draft: empty after a success, or the
// last entered values if the user gives up.
func RunForm(ctx context.Context, p Prompter, s *Submitter, out io.Writer) (Draft, error) {
	d, err := Fill(ctx, p, Draft{})
	if err != nil {
		return d, err
	}

	for {
		next, outcome, err := s.Submit(ctx, d)
		if err != nil {
			return d, err
		}
		d = next
		if outcome.Success() {
			return d, nil
		}

		retry, err := p.Confirm(ctx, ConfirmConfig{Message: "Edit and resend?", Default: true})
		if err != nil {
			return d, err
		}
		if !retry {
			fmt.Fprintln(out, "Your message was not sent.")
			return d, nil
		}

		d, err = Fill(ctx, p, d)
		if err != nil {
			return d, err
		}
	}
}
