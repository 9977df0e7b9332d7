package consentprompt

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-consentform/pkg/form"
)

// scriptedDriver replays canned answers and records the prompts it saw.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []int

	inputMessages []string
	failOnInput   int
	inputCalls    int
}

var errScriptExhausted = errors.New("script exhausted")

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.inputCalls++
	if d.failOnInput > 0 && d.inputCalls == d.failOnInput {
		return "", ErrAborted
	}
	d.inputMessages = append(d.inputMessages, cfg.Message)
	if len(d.inputs) == 0 {
		return "", errScriptExhausted
	}
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if len(d.confirms) == 0 {
		return false, errScriptExhausted
	}
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *scriptedDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, errScriptExhausted
	}
	out := d.selects[0]
	d.selects = d.selects[1:]
	return out, nil
}

func TestFillProducesValidPayload(t *testing.T) {
	driver := &scriptedDriver{
		inputs: []string{
			"Ava Lee",
			"2016-04-01",
			"12 Example St, Brisbane QLD",
			"Jane Lee",
			"Mother",
			"0400 000 000",
			"jane@example.com",
			"Jane Lee", // typed signature
		},
		selects:  []int{0, 0},         // photography yes, current year
		confirms: []bool{true, false}, // use of images, no safety concerns
	}

	payload, err := Fill(context.Background(), driver)
	if err != nil {
		t.Fatalf("Fill() error: %v", err)
	}

	if err := payload.Validate(); err != nil {
		t.Fatalf("filled payload failed validation: %v", err)
	}
	if payload.PhotographyConsent != string(form.ChoiceYes) {
		t.Fatalf("photography consent = %q", payload.PhotographyConsent)
	}
	if !payload.DurationCurrentYear || payload.DurationOther {
		t.Fatal("expected the current-year duration")
	}
	if payload.SafetyConcerns != string(form.ChoiceNo) {
		t.Fatalf("safety concerns = %q", payload.SafetyConcerns)
	}
	if payload.SignatureType != string(form.SignatureTyped) {
		t.Fatalf("signature type = %q", payload.SignatureType)
	}
	if payload.SubmissionDate == "" {
		t.Fatal("submission date must be stamped")
	}
}

func TestFillAsksForDurationTextWhenOther(t *testing.T) {
	driver := &scriptedDriver{
		inputs: []string{
			"Ava Lee",
			"2016-04-01",
			"12 Example St",
			"Jane Lee",
			"Mother",
			"0400 000 000",
			"jane@example.com",
			"Until December 2026", // duration qualifier
			"Jane Lee",            // typed signature
		},
		selects:  []int{1, 2}, // photography no, duration other
		confirms: []bool{true, false},
	}

	payload, err := Fill(context.Background(), driver)
	if err != nil {
		t.Fatalf("Fill() error: %v", err)
	}

	if payload.PhotographyConsent != string(form.ChoiceNo) {
		t.Fatalf("photography consent = %q", payload.PhotographyConsent)
	}
	if !payload.DurationOther || payload.DurationOtherText != "Until December 2026" {
		t.Fatalf("duration = %+v %q", payload.DurationOther, payload.DurationOtherText)
	}
}

func TestFillCollectsSafetyDetails(t *testing.T) {
	driver := &scriptedDriver{
		inputs: []string{
			"Ava Lee",
			"2016-04-01",
			"12 Example St",
			"Jane Lee",
			"Mother",
			"0400 000 000",
			"jane@example.com",
			"Shared custody arrangement", // safety details
			"Jane Lee",
		},
		selects:  []int{0, 0},
		confirms: []bool{true, true}, // safety concerns raised
	}

	payload, err := Fill(context.Background(), driver)
	if err != nil {
		t.Fatalf("Fill() error: %v", err)
	}
	if payload.SafetyConcerns != string(form.ChoiceYes) {
		t.Fatalf("safety concerns = %q", payload.SafetyConcerns)
	}
	if payload.SafetyConcernsDetails != "Shared custody arrangement" {
		t.Fatalf("safety details = %q", payload.SafetyConcernsDetails)
	}
}

func TestFillStopsOnAbort(t *testing.T) {
	driver := &scriptedDriver{failOnInput: 3}

	_, err := Fill(context.Background(), driver)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
}
