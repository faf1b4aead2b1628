// Package carton provides reactive layout primitives for resizable
// sibling panels ("cartons").
//
// A Group owns the ordered panels of one container and keeps their
// sizes consistent while separators are dragged, while the container
// resizes, and while panels are added, removed, collapsed, or given
// hard size limits. The engine renders nothing and owns no DOM nodes:
// a view layer feeds it pointer and resize events and subscribes to
// layout notifications.
//
// Users import this single package for the complete public API:
// geometry types, groups, the drag controller, the group manager, and
// reactive layout events.
package carton
