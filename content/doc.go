// Package content models the directories of a content library and the
// relations between their naming variants.
//
// A library folder usually exists twice: once as "X" and once as
// "X Library". Normalize strips the marker suffix to obtain the canonical
// key, and Library.FindPairs groups entries sharing a key and links every
// member of a group to every other member.
//
// Entries are owned by a single Library and refer to each other by index,
// so the link relation never forms pointer cycles. Links are symmetric,
// irreflexive and idempotent.
package content
