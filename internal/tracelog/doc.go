// Package tracelog provides a thin, swappable structured-logging facade over
// zerolog for the decimalint engine. It is a side channel only: logging
// never alters control flow or return values of any exported operation.
package tracelog
