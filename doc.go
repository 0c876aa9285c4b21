/*
poseviz renders an abstract 3-D humanoid skeleton as 2-D draw commands for
the courtvision coaching dashboard.  The figure is colored by the injury
risk scores produced by the biomechanics analysis backend and animated
either as a continuously rotating live figure (analysis mode) or as a
looping instructional drill sequence (demo mode).

Every tick is a pure function of the animation time and the host supplied
inputs, producing a Frame of line and circle commands in a fixed 100x120
unit viewport.  The render and stream subpackages rasterize and transport
frames; the skeleton subpackage holds the joint topology, the base pose
and the drill keyframe library.

See example code and usage in the example subdirectory.
*/
package poseviz
