// Package assets implements the static asset fallback.
//
// Any request no API route claimed lands here, which is how the browser
// client accompanying the decompiler gets hosted by the same process. The
// fallback is always enabled and must be registered last so API routes keep
// precedence.
//
// # Origins
//
// Two origins are supported, selected by server.asset_source:
//
//   - local: files are served straight from the configured assets directory
//     (the default). The root path answers with the configured index
//     document; paths without a backing file are 404.
//   - storage: objects are streamed from the configured S3/MinIO bucket with
//     the same contract. The bucket is verified once at load time.
package assets
