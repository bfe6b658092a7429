// Package codec provides streaming compression transforms for transfers.
//
// Codecs:
//   - Brotli (.br): github.com/andybalholm/brotli
//   - Gzip (.gz): github.com/klauspost/compress/gzip
//
// The caller always picks the direction (Encoder or Decoder); content is
// never sniffed. Decoding input that is not in the codec's format fails
// inside the transfer with types.KindTransferFailed.
//
// Example Usage:
//
//	codecs := codec.NewRegistry(codec.DefaultLevels())
//	c, ok := codecs.ForExtension(".br")
//	if ok {
//	    _, err := transferer.Transfer(ctx, src, dst, c.Encoder())
//	}
package codec
