// Package services orchestrates the order cache, the order repository and
// object storage. OrderService keeps the cache consistent with the datastore;
// ImageSync moves images in and out of object storage for the create, edit
// and delete flows.
package services
