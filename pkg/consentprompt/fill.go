// Package consentprompt collects a consent form interactively at the
// terminal, producing the same payload the web form posts. Useful for
// front-desk entry of paper forms.
package consentprompt

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-consentform/pkg/form"
)

var required = func(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

// Fill walks the consent form questions and returns the raw payload. The
// signature is always typed in this flow; there is no drawing surface at a
// terminal. The returned payload still goes through the orchestrator's
// validation like any other submission.
func Fill(ctx context.Context, driver PromptDriver) (form.Payload, error) {
	var p form.Payload
	var err error

	if p.ChildName, err = driver.Input(ctx, InputConfig{Message: "Child's full name:", Validator: required("child name")}); err != nil {
		return form.Payload{}, err
	}
	if p.ChildDOB, err = driver.Input(ctx, InputConfig{Message: "Child's date of birth (yyyy-mm-dd):", Validator: required("date of birth")}); err != nil {
		return form.Payload{}, err
	}
	if p.ChildAddress, err = driver.Input(ctx, InputConfig{Message: "Child's address:", Validator: required("address")}); err != nil {
		return form.Payload{}, err
	}

	if p.ParentName, err = driver.Input(ctx, InputConfig{Message: "Parent/Guardian full name:", Validator: required("guardian name")}); err != nil {
		return form.Payload{}, err
	}
	if p.RelationshipToChild, err = driver.Input(ctx, InputConfig{Message: "Relationship to child:", Validator: required("relationship")}); err != nil {
		return form.Payload{}, err
	}
	if p.ParentPhone, err = driver.Input(ctx, InputConfig{Message: "Parent/Guardian phone:", Validator: required("phone")}); err != nil {
		return form.Payload{}, err
	}
	if p.ParentEmail, err = driver.Input(ctx, InputConfig{Message: "Parent/Guardian email:", Validator: required("email")}); err != nil {
		return form.Payload{}, err
	}

	photography, err := driver.Select(ctx, SelectConfig{
		Message: "Photography & video consent:",
		Options: []string{
			"I DO give consent for my child to be photographed and/or videoed",
			"I DO NOT give consent for my child to be photographed and/or videoed",
		},
	})
	if err != nil {
		return form.Payload{}, err
	}
	if photography == 0 {
		p.PhotographyConsent = string(form.ChoiceYes)
	} else {
		p.PhotographyConsent = string(form.ChoiceNo)
	}

	if p.UseOfImagesConsent, err = driver.Confirm(ctx, ConfirmConfig{
		Message: "Agree to the use of images and video (social media, website, promotional materials, newsletters, media releases)?",
	}); err != nil {
		return form.Payload{}, err
	}

	duration, err := driver.Select(ctx, SelectConfig{
		Message: "This consent applies:",
		Options: []string{
			"For the current calendar year only",
			"For the duration of the child's involvement with the organisation",
			"Other",
		},
	})
	if err != nil {
		return form.Payload{}, err
	}
	switch duration {
	case 0:
		p.DurationCurrentYear = true
	case 1:
		p.DurationFullInvolvement = true
	default:
		p.DurationOther = true
		if p.DurationOtherText, err = driver.Input(ctx, InputConfig{Message: "Specify the duration:", Validator: required("duration")}); err != nil {
			return form.Payload{}, err
		}
	}

	concerns, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Any legal, custody, or safety concerns regarding publication of the child's image?",
	})
	if err != nil {
		return form.Payload{}, err
	}
	if concerns {
		p.SafetyConcerns = string(form.ChoiceYes)
		if p.SafetyConcernsDetails, err = driver.Input(ctx, InputConfig{Message: "Details:", Validator: required("details")}); err != nil {
			return form.Payload{}, err
		}
	} else {
		p.SafetyConcerns = string(form.ChoiceNo)
	}

	if p.Signature, err = driver.Input(ctx, InputConfig{Message: "Type the guardian's signature:", Validator: required("signature")}); err != nil {
		return form.Payload{}, err
	}
	p.SignatureType = string(form.SignatureTyped)
	p.SubmissionDate = time.Now().Format(time.RFC3339)

	return p, nil
}
