// Package streamout renders C-style printf format strings to byte or
// UTF-16 sinks, reproducing the exact field layout of the Microsoft CRT
// printf family — including its "1.#INF00"/"1.#QNAN0"/"1.#SNAN0" rendering
// of non-finite doubles.
package streamout
