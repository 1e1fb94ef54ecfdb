package redisx

// Conversation state per user: session:{user_id} -> state string.
// No TTL: a stalled conversation stays open until the user finishes or
// cancels it. Accepted limitation.
const KeySession = "session:%d"
