// Package errs provides the typed errors shared across the order back-office.
//
// The package includes one error type per failure class:
//   - ObjectNotFoundError: an order id has no matching row
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - StorageError: an upload to or delete from object storage failed
//   - PersistenceError: a datastore read or write failed
//
// Every type unwraps to its sentinel, so callers classify with errors.Is. The
// HTTP adapter maps each sentinel to a status code.
package errs
