/*
The tzdiff command compares the current UTC offset of a reference location
with that of each of a list of other locations and prints a table showing
how far ahead of or behind the reference each location is.

Locations are given as free-text place names ("Tokyo", "Buenos Aires",
"Kathmandu, Nepal"). Each name is geocoded using a Nominatim search service
and the timezone at the resulting coordinates is used.

The reference location is prompted for; an empty response uses the local
timezone. The locations to compare are then read one per line until a line
holding just "q" is entered.
*/
package main
