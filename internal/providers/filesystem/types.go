package filesystem

import (
	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/GriffinCanCode/fileshell/internal/digest"
	"github.com/GriffinCanCode/fileshell/internal/logging"
	"github.com/GriffinCanCode/fileshell/internal/transfer"
	"github.com/spf13/afero"
)

// FilesystemOps provides common filesystem operation helpers
type FilesystemOps struct {
	Fs       afero.Fs
	Transfer *transfer.Transferer
	Codecs   *codec.Registry
	Digest   *digest.Engine
	Log      *logging.Logger
}

// NewOps wires the shared helpers around one filesystem
func NewOps(fs afero.Fs, tr *transfer.Transferer, codecs *codec.Registry, log *logging.Logger) *FilesystemOps {
	if log == nil {
		log = logging.NewNop()
	}
	if tr == nil {
		tr = transfer.New(fs, transfer.DefaultBufferSize, log)
	}
	if codecs == nil {
		codecs = codec.NewRegistry(codec.DefaultLevels())
	}
	return &FilesystemOps{
		Fs:       fs,
		Transfer: tr,
		Codecs:   codecs,
		Digest:   digest.New(fs),
		Log:      log.Named("filesystem"),
	}
}
