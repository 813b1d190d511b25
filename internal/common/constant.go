package common

// SessionCookieName is the HTTP cookie that carries the signed session token.
const SessionCookieName = "liftlog_session"

// DateLayout is the on-disk and on-the-wire format of installation dates.
const DateLayout = "2006-01-02"
