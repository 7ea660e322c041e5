package session

import "time"

// timeNow is a test seam for expiry checks.
var timeNow = time.Now
