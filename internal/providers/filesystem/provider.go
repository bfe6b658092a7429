package filesystem

import (
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// Provider exposes the filesystem commands to the shell
type Provider struct {
	directory  *DirectoryOps
	basic      *BasicOps
	operations *OperationsOps
	archives   *ArchivesOps
	hash       *HashOps
}

// NewProvider creates a filesystem provider over ops
func NewProvider(ops *FilesystemOps) *Provider {
	return &Provider{
		directory:  &DirectoryOps{FilesystemOps: ops},
		basic:      &BasicOps{FilesystemOps: ops},
		operations: &OperationsOps{FilesystemOps: ops},
		archives:   &ArchivesOps{FilesystemOps: ops},
		hash:       &HashOps{FilesystemOps: ops},
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	var tools []types.Tool
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.operations.GetTools()...)
	tools = append(tools, p.archives.GetTools()...)
	tools = append(tools, p.hash.GetTools()...)

	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "Navigation, file operations, compression and hashing",
		Category:    types.CategoryFilesystem,
		Tools:       tools,
	}
}

// Handlers returns the command table
func (p *Provider) Handlers() map[string]types.Handler {
	return map[string]types.Handler{
		"up":         p.directory.Up,
		"cd":         p.directory.Cd,
		"ls":         p.directory.Ls,
		"cat":        p.basic.Cat,
		"add":        p.basic.Add,
		"rm":         p.basic.Rm,
		"rn":         p.operations.Rn,
		"cp":         p.operations.Cp,
		"mv":         p.operations.Mv,
		"compress":   p.archives.Compress,
		"decompress": p.archives.Decompress,
		"hash":       p.hash.Hash,
	}
}
