/*
The callstack package provides a Stack type which records the nesting of
timed operations, such as the lookups performed for each location, and
reports how long each one took. The Tag method provides a prefix for
messages which reflects the depth of the operation being annotated.

Timings are written to the Stack's writer (standard error by default) so
that they do not interleave with the program's results.
*/
package callstack
