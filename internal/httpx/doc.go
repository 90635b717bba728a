// Package httpx holds the fiber plumbing shared by the server and the
// analysis service: the {"detail": ...} error body and request logging.
package httpx
