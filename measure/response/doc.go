// Package response characterizes a single-channel smoothing filter from
// the outside: its impulse and step responses, the frequency response of
// the impulse response computed with an FFT, and time-domain figures such
// as settling time and overshoot.
//
// Filters are probed through a [Factory] so each measurement runs on a
// freshly constructed filter and never disturbs one in use.
package response
