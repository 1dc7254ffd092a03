package greeter

import (
	"io"

	"github.com/thirukguru/hello-docker/model"
	"github.com/thirukguru/hello-docker/service/output"
	"github.com/thirukguru/hello-docker/service/system"
	"go.uber.org/zap"
)

type service struct {
	runtime     system.Runtime
	output      output.Service
	versionInfo model.VersionInfo
	bannerOut   io.Writer
	drawBanner  func(w io.Writer) error
	logger      *zap.Logger
}

// Service runs a single invocation of the program.
type Service interface {
	Orchestrate(flags model.Flags) error
}
