package filesystem

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/fileshell/internal/digest"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// HashOps handles content digests
type HashOps struct {
	*FilesystemOps
}

// GetTools returns hash tool definitions
func (h *HashOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "hash",
			Name:        "Hash",
			Description: "Print the hex digest of a file (sha256 unless another algorithm is named)",
			Parameters: []types.Parameter{
				{Name: "file", Description: "File path", Required: true},
				{Name: "algorithm", Description: "sha256, sha512, blake2b or sha3", Required: false},
			},
		},
	}
}

// Hash prints the digest of a file
func (h *HashOps) Hash(ctx context.Context, sess *types.Session, args []string) error {
	if err := requireArgs("hash", args, "file"); err != nil {
		return err
	}

	name := ""
	if len(args) > 1 {
		name = args[1]
	}
	algo, err := digest.ParseAlgorithm(name)
	if err != nil {
		return err
	}

	sum, err := h.Digest.Digest(resolve(sess, args[0]), algo)
	if err != nil {
		return err
	}
	fmt.Fprintln(sess.Out, sum)
	return nil
}
