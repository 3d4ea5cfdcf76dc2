// Package services bridges the HTTP transport and the pipeline core. The
// analysis service owns reading uploaded source tables, invoking the
// processor and shaping the response the presentation layer consumes.
package services
