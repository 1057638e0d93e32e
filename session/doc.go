// Package session holds the admin credential the API client reads on every
// private request.
//
// A Store is the single owner of the current credential. The client only
// reads it through Token and reports 401 responses through
// InvalidateSession; login and logout are driven by the application. A
// Persister makes the credential survive process restarts (file or redis);
// without one the store is memory only.
package session
