package actor

// Middleware 包裹 Handler 的中间件
type Middleware[S, M any] func(next Handler[S, M]) Handler[S, M]

// Chain 将中间件应用到 handler 上
// 反向遍历使注册顺序等于执行顺序；若没有中间件则原样返回 handler
func Chain[S, M any](handler Handler[S, M], middlewares ...Middleware[S, M]) Handler[S, M] {
	if handler == nil {
		return nil
	}
	if len(middlewares) == 0 {
		return handler
	}
	wrapped := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		mw := middlewares[i]
		if mw == nil {
			continue
		}
		wrapped = mw(wrapped)
	}
	return wrapped
}
