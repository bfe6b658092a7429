package filesystem

import (
	"context"
	"strings"

	"github.com/GriffinCanCode/fileshell/internal/codec"
	"github.com/GriffinCanCode/fileshell/internal/shared/paths"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"go.uber.org/zap"
)

// ArchivesOps handles streaming compression
type ArchivesOps struct {
	*FilesystemOps
}

// GetTools returns compression tool definitions
func (a *ArchivesOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "compress",
			Name:        "Compress",
			Description: "Compress a file; the destination must end in .br (Brotli) or .gz (gzip)",
			Parameters: []types.Parameter{
				{Name: "file", Description: "Source file", Required: true},
				{Name: "dest_file", Description: "Compressed output file", Required: true},
			},
		},
		{
			ID:          "decompress",
			Name:        "Decompress",
			Description: "Decompress a .br or .gz file (Brotli unless the source ends in .gz)",
			Parameters: []types.Parameter{
				{Name: "file", Description: "Compressed file", Required: true},
				{Name: "dest_file", Description: "Output file", Required: true},
			},
		},
	}
}

// Compress encodes a file with the codec named by the destination's
// extension. The extension is checked before anything touches the disk.
func (a *ArchivesOps) Compress(ctx context.Context, sess *types.Session, args []string) error {
	if err := requireArgs("compress", args, "file", "dest_file"); err != nil {
		return err
	}

	c, ok := a.Codecs.ForExtension(paths.Ext(args[1]))
	if !ok {
		return types.InvalidInput("compress", "extension of compressed file should be one of %s",
			strings.Join(a.Codecs.Extensions(), ", "))
	}

	return a.run(ctx, "compress", resolve(sess, args[0]), resolve(sess, args[1]), c, true)
}

// Decompress decodes a file. The codec follows the source extension and
// falls back to Brotli.
func (a *ArchivesOps) Decompress(ctx context.Context, sess *types.Session, args []string) error {
	if err := requireArgs("decompress", args, "file", "dest_file"); err != nil {
		return err
	}

	c, ok := a.Codecs.ForExtension(paths.Ext(args[0]))
	if !ok {
		c, ok = a.Codecs.ForExtension(".br")
		if !ok {
			return types.InvalidInput("decompress", "no Brotli codec registered")
		}
	}

	return a.run(ctx, "decompress", resolve(sess, args[0]), resolve(sess, args[1]), c, false)
}

func (a *ArchivesOps) run(ctx context.Context, op, src, dst string, c codec.Codec, encode bool) error {
	if err := a.Transfer.CheckSource(op, src); err != nil {
		return err
	}

	tf := c.Decoder()
	if encode {
		tf = c.Encoder()
	}

	n, err := a.Transfer.Transfer(ctx, src, dst, tf)
	if err != nil {
		return err
	}

	a.Log.Debug("Codec transfer complete",
		zap.String("op", op),
		zap.String("algorithm", string(c.Algorithm())),
		zap.String("source", src),
		zap.String("destination", dst),
		zap.Int64("bytes", n))
	return nil
}
