package grammar

func cleanup() {}
