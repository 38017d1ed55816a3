// Package extract pulls the elements of one semantic layer out of a
// classified view document.
//
// Two modes exist. In grouped mode the document already holds a container
// whose class names the layer; its matching descendants are collected (or
// the containers themselves, when whole groups are preserved). In scattered
// mode no such container exists, so every primitive classified into the
// layer is collected and the selection names the class of the container
// the caller should synthesize around them.
//
// Extraction never fails. An empty Selection means the layer is absent,
// which is different from a document that failed to parse.
package extract
