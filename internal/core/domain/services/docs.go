// Package services provides stateless domain services for order images:
// reconciling an edited image list, deriving collision-resistant object keys,
// mapping object keys to public URLs and decoding legacy inline images.
package services
