package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-consentform/internal/config"
	"github.com/goliatone/go-consentform/internal/httpserver"
	"github.com/goliatone/go-consentform/internal/logger"
	"github.com/goliatone/go-consentform/pkg/form"
	"github.com/goliatone/go-consentform/pkg/mailer"
	"github.com/goliatone/go-consentform/pkg/submission"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP submission endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			// Delivery configuration is checked before the listener starts
			// so a misconfigured deployment fails at boot, not on the first
			// guardian's submission.
			if err := cfg.ValidateDelivery(); err != nil {
				return err
			}

			sender, err := mailer.NewResendSender(cfg.Delivery.ResendAPIKey)
			if err != nil {
				return err
			}

			orchestrator := submission.New(
				submission.WithSender(sender),
				submission.WithSenderIdentity(cfg.Delivery.From),
				submission.WithPrimaryRecipient(cfg.Delivery.OrganisationTo),
				submission.WithOrganisation(organisationFromConfig(cfg)),
				submission.WithGuardianCopyPolicy(guardianPolicy(cfg)),
			)

			server := httpserver.New(orchestrator)
			logger.Info("listening on %s", cfg.Server.Addr)
			fmt.Fprintf(cmd.OutOrStdout(), "consentform listening on %s\n", cfg.Server.Addr)
			return http.ListenAndServe(cfg.Server.Addr, server.Routes())
		},
	}
}

func organisationFromConfig(cfg config.Config) form.Organisation {
	return form.Organisation{
		Name:    cfg.Organisation.Name,
		Address: cfg.Organisation.Address,
		Phone:   cfg.Organisation.Phone,
		Email:   cfg.Organisation.Email,
	}
}

func guardianPolicy(cfg config.Config) submission.GuardianCopyPolicy {
	if cfg.Delivery.SkipGuardianCopyWhenSame {
		return submission.GuardianCopySkipSameAsPrimary
	}
	return submission.GuardianCopyAlways
}
