/*
The geocode package resolves free-text place names into coordinates. It
provides a Geocoder interface, a client for the Nominatim (OpenStreetMap)
search service and a Retrier which repeats requests that time out.

A name which the service cannot place is reported with ErrNoMatch. A
request which times out is reported with an error wrapping ErrTimedOut;
these are the only errors the Retrier will retry.
*/
package geocode
