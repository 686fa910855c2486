package flow

// Package flow drives one interaction pass: URL, preview, directory and
// confirmed download. Session state is passed in on every call as an Input
// and comes back as a View; the flow itself keeps none.
