package model

// Version is the released version of ll.
const Version = "0.4.0"
