package db

const CanvasDoesNotExistError = "canvas not found"
const UserNotFoundError = "user not found"
