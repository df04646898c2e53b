package services

// defaultListLimit bounds list endpoints when the caller gives no limit.
const defaultListLimit = 50
