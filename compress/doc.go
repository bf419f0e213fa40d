// Package compress provides the compression codecs used by document streams and pack
// bundles.
//
// # Stream adapter
//
// Document streams flagged as compressed are usually raw deflate, occasionally
// zlib-wrapped, and in broken files not compressed at all. DeflateCodec tries the tiers
// in that order and falls back to returning the input, so decoding a stream never fails
// on account of its compression:
//
//	body := compress.Inflate(raw)
//
// Encoding always produces zlib, which every reader handles.
//
// # Pack codecs
//
// Pack bundles (see package container) carry a compression selector:
//   - None: pass-through
//   - Zstd: best general ratio, pooled encoders and decoders
//   - S2: fastest, moderate ratio
//   - LZ4: frame format, fast decompression
//   - Brotli: highest ratio, slowest
//   - Deflate: the stream adapter itself
//
// Use GetCodec for the shared instances or CreateCodec for a fresh one:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	packed, err := codec.Compress(payload)
//
// All codecs are immutable values and safe for concurrent use. CreateCodec accepts the
// same options as the individual constructors:
//
//	codec, err := compress.CreateCodec(ct, "pack", compress.WithMaxOutput(limit))
//
// Every decompressor bounds its output (DefaultMaxOutput unless WithMaxOutput says
// otherwise), returning errs.ErrLimitExceeded, or for the stream adapter falling
// through to the next tier.
package compress
