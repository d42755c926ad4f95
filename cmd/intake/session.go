package main

import (
	"bufio"
	"context"
	"fmt"
	"intake-service/internal/pkg/flow"
	"intake-service/internal/pkg/payload"
	"intake-service/internal/pkg/schema"
	"intake-service/internal/pkg/submission"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const backCommand = "b"

// session walks one questionnaire on a line based terminal.
type session struct {
	engine   *flow.Engine
	pipeline *submission.Pipeline
	in       *bufio.Scanner
	out      io.Writer
	log      *zap.Logger
}

func newSession(def *flow.Definition, pipeline *submission.Pipeline, in io.Reader, out io.Writer, logger *zap.Logger) *session {
	return &session{
		engine:   flow.NewEngine(def),
		pipeline: pipeline,
		in:       bufio.NewScanner(in),
		out:      out,
		log:      logger,
	}
}

// run returns the last submission result, or io.EOF when input ran out first.
func (s *session) run(ctx context.Context) (submission.Result, error) {
	def := s.engine.Definition()
	fmt.Fprintf(s.out, "%s\n(type %q to go back)\n", def.Title, backCommand)

	for {
		if s.engine.Complete() {
			result, again, err := s.submit(ctx)
			if err != nil || !again {
				return result, err
			}
			continue
		}

		step := s.engine.Current()
		fmt.Fprintf(s.out, "\n%s\n", step.Prompt)

		back, err := s.answer(step)
		if err != nil {
			return submission.Result{}, err
		}
		if back {
			if !s.engine.Back() {
				fmt.Fprintln(s.out, "Already at the first question.")
			}
			continue
		}

		if outcome := s.engine.Advance(); outcome == flow.Blocked {
			fmt.Fprintf(s.out, "! %v\n", s.engine.Error())
		}
	}
}

func (s *session) answer(step *flow.Step) (bool, error) {
	switch step.Kind {
	case flow.KindSingleChoice:
		options := s.engine.VisibleOptions()
		choice, back, err := s.choose(options)
		if err != nil || back {
			return back, err
		}
		s.engine.SetAnswer(step.Field, choice)
	case flow.KindFreeText:
		value, back, err := s.readLine("> ")
		if err != nil || back {
			return back, err
		}
		s.engine.SetAnswer(step.Field, value)
	case flow.KindSummary:
		lines, err := payload.Summary(s.engine.Definition(), s.engine.Answers(), step)
		if err != nil {
			return false, err
		}
		for _, line := range lines {
			fmt.Fprintf(s.out, "  %s: %s\n", line.Label, line.Value)
		}
		if len(step.Inputs) == 0 {
			_, back, err := s.readLine("Press enter to submit ")
			return back, err
		}
		return s.fill(step)
	case flow.KindInfo:
		_, back, err := s.readLine("Press enter to continue ")
		return back, err
	default:
		return s.fill(step)
	}
	return false, nil
}

func (s *session) fill(step *flow.Step) (bool, error) {
	for _, input := range step.Inputs {
		switch {
		case input.Type == flow.InputCheckbox:
			value, back, err := s.readLine(input.Label + " [y/N] ")
			if err != nil || back {
				return back, err
			}
			s.engine.SetAnswer(input.Field, strings.EqualFold(value, "y") || strings.EqualFold(value, "yes"))
		case len(input.Options) > 0:
			fmt.Fprintln(s.out, input.Label)
			choice, back, err := s.choose(input.Options)
			if err != nil || back {
				return back, err
			}
			s.engine.SetAnswer(input.Field, choice)
		default:
			prompt := input.Label
			if current, ok := s.engine.Answer(input.Field); ok {
				if text, _ := current.(string); text != "" {
					prompt += " [" + text + "]"
				}
			}
			value, back, err := s.readLine(prompt + ": ")
			if err != nil || back {
				return back, err
			}
			if value == "" {
				if _, ok := s.engine.Answer(input.Field); ok {
					continue
				}
			}
			if input.Type == flow.InputPhone {
				value = schema.FormatPhone(value)
			}
			s.engine.SetAnswer(input.Field, value)
		}
	}
	return false, nil
}

func (s *session) choose(options []flow.Option) (string, bool, error) {
	for i, option := range options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, option.Label)
	}
	for {
		value, back, err := s.readLine("> ")
		if err != nil || back {
			return "", back, err
		}
		n, err := strconv.Atoi(value)
		if err == nil && n >= 1 && n <= len(options) {
			return options[n-1].ID, false, nil
		}
		fmt.Fprintf(s.out, "! Pick a number between 1 and %d\n", len(options))
	}
}

func (s *session) readLine(prompt string) (string, bool, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", false, err
		}
		return "", false, io.EOF
	}
	line := strings.TrimSpace(s.in.Text())
	return line, line == backCommand, nil
}

// submit sends the finished answers once and asks whether to try again on failure.
func (s *session) submit(ctx context.Context) (submission.Result, bool, error) {
	def := s.engine.Definition()
	body, err := payload.Assemble(def.Type, s.engine.Answers())
	if err != nil {
		s.log.Error("session.submit error assembling payload", zap.Error(err))
		return submission.Result{}, false, err
	}

	fmt.Fprintln(s.out, "\nSending...")
	result := s.pipeline.Submit(ctx, def.Type, body)
	switch result.State {
	case submission.Success:
		fmt.Fprintf(s.out, "Thank you! %s\n", result.Message)
		return result, false, nil
	case submission.Idle:
		return result, false, ctx.Err()
	}

	fmt.Fprintf(s.out, "! %s\n", result.Message)
	value, back, err := s.readLine("Try again? [y/N] ")
	if err != nil {
		return result, false, err
	}
	if back {
		s.engine.Back()
		return result, true, nil
	}
	return result, strings.EqualFold(value, "y"), nil
}
