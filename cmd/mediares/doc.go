// Command mediares resolves media asset manifests to local library files,
// emitting a deterministic AssetManifest.media envelope.
package main
