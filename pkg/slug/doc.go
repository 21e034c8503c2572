// Package slug builds URL-safe path segments.
//
// Make keeps ASCII letters and digits, lowercases them by default, and folds
// every other run of characters into one separator:
//
//	slug.Make("Hello World!")               // "hello-world"
//	slug.Make("Hello World", slug.Separator("_")) // "hello_world"
//	slug.Make("Metaphysics")                // "metaphysics"
//
// The pillar catalog uses Make to reject names whose plain lowercase form
// would not survive in a URL.
package slug
