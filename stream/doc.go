// Package stream serves searches over websockets so a remote client can
// animate them.
//
// Each connection gets its own clone of the terrain and its own
// search.Controller; nothing is shared between connections. A client sends
// Request messages; for each one the server replies with step frames every
// StepsPerFrame expansions and finishes with a done frame, or answers with
// a single error frame when the request is invalid. The connection stays
// open for further requests.
//
// GET /terrain.png renders the idle terrain with package render.
package stream
