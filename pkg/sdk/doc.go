// Package sdk contains the generated FlatBuffers accessors for the
// Open-Meteo API response schema.
//
// A WeatherApiResponse is a view over bytes owned by the caller: it is
// valid only while the response buffer it was decoded from is retained.
// Accessors read directly from that buffer on every call; nothing is
// copied up front.
//
// Only the root table's metadata fields (coordinates, elevation, timezone,
// generation time) are included here. The full weather variable schema
// lives upstream and is deliberately not duplicated.
package sdk
