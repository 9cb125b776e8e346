package a

func cleanup() {}
