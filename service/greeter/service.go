// Package greeter ties the runtime queries to the output service.
package greeter

import (
	"fmt"
	"io"

	"github.com/thirukguru/hello-docker/model"
	"github.com/thirukguru/hello-docker/service/output"
	"github.com/thirukguru/hello-docker/service/system"
	"github.com/thirukguru/hello-docker/shared/banner"
	"go.uber.org/zap"
)

// NewService creates a greeter. A nil logger disables logging.
func NewService(
	runtime system.Runtime,
	outputService output.Service,
	versionInfo model.VersionInfo,
	bannerOut io.Writer,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		runtime:     runtime,
		output:      outputService,
		versionInfo: versionInfo,
		bannerOut:   bannerOut,
		drawBanner:  banner.DrawBannerTitle,
		logger:      logger,
	}
}

func (s *service) Orchestrate(flags model.Flags) error {
	if flags.Version {
		return s.versionWorkflow()
	}

	return s.greetingWorkflow(flags)
}

func (s *service) versionWorkflow() error {
	s.logger.Debug("Printing version information", zap.String("version", s.versionInfo.Version))

	if err := s.output.RenderVersion(s.versionInfo); err != nil {
		return fmt.Errorf("failed to print version: %w", err)
	}

	return nil
}

func (s *service) greetingWorkflow(flags model.Flags) error {
	greeting, err := system.Collect(s.runtime, model.GreetingText)
	if err != nil {
		return err
	}

	if flags.Banner && s.output.Format() == output.FormatText {
		if err := s.drawBanner(s.bannerOut); err != nil {
			return err
		}
	}

	s.logger.Debug("Collected runtime details",
		zap.String("version", greeting.RuntimeVersion),
		zap.String("platform", greeting.Platform),
		zap.String("format", string(s.output.Format())))

	if err := s.output.RenderGreeting(greeting); err != nil {
		return fmt.Errorf("failed to print greeting: %w", err)
	}

	return nil
}
