// Package thumbnail implements the image conversion pipeline: stretch resize to
// the YouTube thumbnail resolution and size-bounded JPEG encoding.
//
// # Pipeline
//
// The [Converter] composes three operations in a straight line:
//
//  1. [Stretch] : Lanczos resize to exactly 1280×720, scaling each axis
//     independently (no aspect-ratio preservation, no crop, no padding).
//
//  2. [Converter.EncodeBounded] : walk the quality ladder (95 down to 60 in
//     steps of 5) and accept the highest quality whose encoded size fits the
//     2 MiB budget. If no rung fits, the quality-60 bytes are accepted anyway
//     and the result is flagged over-budget — a deliberate best-effort
//     fallback, not a failure.
//
//  3. [Converter.Convert] : orchestration — input validation, decode, default
//     output path derivation, resize, encode, atomic write, and a [Report]
//     describing what happened.
//
// # Error Handling
//
// Each step maps failures to typed sentinels from the shared package:
//   - [shared.ErrFileNotFound] : input path does not exist
//   - [shared.ErrDecodeFailed] : the image library could not decode the input
//   - [shared.ErrEncodeFailed] : JPEG encoding failed
//   - [shared.ErrWriteFailed] : the output file could not be written
//
// Output files are written via a temp file and rename, so a failed conversion
// never leaves a partial output behind.
package thumbnail
