// Package bnlog provides a unified logging interface for the bignum
// self-test harness and CLI. It abstracts the underlying logging
// implementation, allowing consistent structured logging whether the
// backend is zerolog or the standard library logger.
package bnlog
